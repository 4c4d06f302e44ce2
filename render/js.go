package render

// script is the client-side behavior of every generated site. The click
// beacon is fire-and-forget: delivery failures are swallowed and must
// never block navigation to the affiliate link.
const script = `(function () {
  'use strict';
  var TRACK_ENDPOINT = '/api/track';

  function track(section, url) {
    var payload = JSON.stringify({
      event: 'affiliate_click',
      section: section,
      url: url,
      timestamp: new Date().toISOString()
    });
    try {
      if (navigator.sendBeacon) {
        navigator.sendBeacon(TRACK_ENDPOINT, payload);
        return;
      }
      fetch(TRACK_ENDPOINT, {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: payload,
        keepalive: true
      }).catch(function () {});
    } catch (e) {
      /* never block navigation */
    }
  }

  document.addEventListener('DOMContentLoaded', function () {
    document.querySelectorAll('.cta-button').forEach(function (btn) {
      btn.addEventListener('click', function () {
        track(btn.getAttribute('data-section'), btn.getAttribute('href'));
      });
    });

    // FAQ accordion: opening one entry closes all others
    var items = Array.prototype.slice.call(document.querySelectorAll('.faq-item'));
    items.forEach(function (item) {
      var question = item.querySelector('.faq-question');
      if (!question) return;
      question.addEventListener('click', function () {
        var wasOpen = item.classList.contains('open');
        items.forEach(function (other) {
          other.classList.remove('open');
        });
        if (!wasOpen) {
          item.classList.add('open');
        }
      });
    });

    document.querySelectorAll('a[href^="#"]').forEach(function (anchor) {
      anchor.addEventListener('click', function (e) {
        var target = document.querySelector(anchor.getAttribute('href'));
        if (target) {
          e.preventDefault();
          target.scrollIntoView({ behavior: 'smooth' });
        }
      });
    });

    var lazy = document.querySelectorAll('img[data-src]');
    if ('IntersectionObserver' in window) {
      var observer = new IntersectionObserver(function (entries) {
        entries.forEach(function (entry) {
          if (entry.isIntersecting) {
            entry.target.src = entry.target.getAttribute('data-src');
            entry.target.removeAttribute('data-src');
            observer.unobserve(entry.target);
          }
        });
      });
      lazy.forEach(function (img) { observer.observe(img); });
    } else {
      lazy.forEach(function (img) {
        img.src = img.getAttribute('data-src');
        img.removeAttribute('data-src');
      });
    }
  });
})();
`
